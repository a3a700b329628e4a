/*
Package kitty implements a registry of unique, non-fungible kitties.

Every kitty is identified by its DNA, a 16 byte fingerprint derived from
block entropy when the kitty is minted. The gender of a kitty follows
from its DNA. Each owner holds an ordered list of kitties that is
bounded by the configured MaxKittiesOwned.

Kitties can be transferred directly or listed for sale by setting a
price. A buyer pays the listed price through the ledger and becomes the
new owner. Every operation validates all preconditions before the first
write, so a failed operation leaves no trace.
*/
package kitty
