/*
Package greeter lets members greet the chain a limited number of times.

The number of greetings allowed depends on the membership of the caller.
The first greeting of an unknown address creates a standard membership.
Members can change their membership at any time, keeping the number of
greetings already made.
*/
package greeter
