package kitty

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/cattery/errors"
)

// Gender of a kitty. The zero value is not a valid gender.
type Gender int32

const (
	Gender_Invalid Gender = 0
	Gender_Male    Gender = 1
	Gender_Female  Gender = 2
)

var genderNames = map[Gender]string{
	Gender_Male:   "male",
	Gender_Female: "female",
}

// GenderOf returns the gender encoded in the DNA. An even first byte is
// male and an odd one is female.
func GenderOf(dna DNA) Gender {
	if len(dna) == 0 {
		return Gender_Invalid
	}
	if dna[0]%2 == 0 {
		return Gender_Male
	}
	return Gender_Female
}

func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Gender(%d)", int32(g))
}

// Validate returns an error if this is not a known gender.
func (g Gender) Validate() error {
	if _, ok := genderNames[g]; !ok {
		return errors.Wrapf(errors.ErrInput, "invalid gender %d", int32(g))
	}
	return nil
}

func (g Gender) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g *Gender) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrInput, "gender must be a string")
	}
	for gender, n := range genderNames {
		if n == name {
			*g = gender
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown gender %q", name)
}
