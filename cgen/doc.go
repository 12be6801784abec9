// Package cgen renders normalized option records as C source for a SANE
// backend: the option_t enumeration and descriptor struct for the header, and
// the constraint tables plus build_option_descriptors for the body.
package cgen
