/*
Package weavetest provides mocks and helpers for testing handlers,
decorators and whole applications.

Mocks count their calls and return preconfigured results so that a test can
assert both on the outcome and on what was called. AppRunner drives an ABCI
application through complete blocks.
*/
package weavetest
