/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Every extension that needs to be configured declares its own configuration
message and stores it under its package name. The configuration is loaded
from the genesis file and can later be changed by its owner using a message
that carries a patch of the configuration.

Not being able to get a configuration value is a critical condition for the
application. Application must be terminated and configured correctly.
*/
package gconf
