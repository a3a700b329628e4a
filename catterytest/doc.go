/*
Package catterytest provides mocks and helpers shared by the tests of all
cattery packages.
*/
package catterytest
