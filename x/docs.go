/*
Package x contains the extensions of the cattery application.

Extensions implement common functionality (Handler, Decorator,
Initializer, queries) and are combined together in the app package
to construct an application. This package holds the pieces shared by
all of them, such as the Authenticator used to learn who signed the
current transaction.
*/
package x
