// Package config loads the server and client configuration.
//
// The server configuration is grouped into App (owner credentials, tokens,
// request signing), Component (construction parameters of the custody
// component), Storage, Server and Workers. It is assembled from three
// sources, later ones overriding non-zero fields of earlier ones:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The client reads only the environment in [GetClientConfig]; its cobra
// commands apply flags on top.
package config
