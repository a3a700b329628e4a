/*
Package cattery defines interfaces used throughout the app, such as: storage,
transactions, handlers, events etc.
It also contains helpers to work with context, authentication and abci.
Look into this package to get an brief overview of design decisions made
around interfaces and extension building blocks.
*/
package cattery
