/*
Package utils provides decorators that are not bound to any extension:
transaction logging, panic recovery and savepoints that isolate the
writes of a failed transaction.
*/
package utils
