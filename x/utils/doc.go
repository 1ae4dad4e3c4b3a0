/*
Package utils contains decorators that are useful for any application: they
log every transaction, turn panics into errors, isolate the state changes of
a failed transaction and tag successful deliveries with the message path.
*/
package utils
