// Package domain contains the core value types of the converter: the fixed
// set of radices, conversion requests and the tagged conversion outcome. The
// types carry no infrastructure concerns so they can be shared by the
// converter and every presentation front end.
package domain
