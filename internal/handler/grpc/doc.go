// Package grpc exposes part of the custody API as the gRPC service
// custody.v1.Custody.
//
// Messages are the JSON-encoded models types; the service descriptor is
// written by hand instead of generated from a .proto file.
package grpc
