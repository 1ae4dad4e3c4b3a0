/*
Package x contains the interfaces shared by the extensions.

Each extension lives in its own subpackage and receives an Authenticator in
its handler constructors so that authentication can be provided by any
mechanism: signatures, derived escrow authority or a combination of both.
*/
package x
