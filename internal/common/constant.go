// Package common contains shared constants and sentinel errors used across
// Wholesale Lens client components.
package common

// DelegationHeaderName is the gRPC metadata key used to carry the signed
// delegation token on outbound requests.
const DelegationHeaderName = "x-lens-delegation"

// AnonymousPrincipal is the well-known principal of the anonymous identity.
const AnonymousPrincipal = "2vxsx-fae"

// SupportEmail receives pre-filled diagnostic reports from the error screen.
const SupportEmail = "wholesalensrealestate@gmail.com"
