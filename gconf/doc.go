/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object under the "_c:<package>"
key. Configuration is loaded from the genesis file and can be updated later
by the configuration owner with a patch message.
*/
package gconf
