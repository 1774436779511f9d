package client

import "errors"

var (
	ErrOwnerSecretRequired = errors.New("owner secret or token is required for this command")
	ErrPassphraseRequired  = errors.New("wallet passphrase is required for this command")
	ErrInvalidArgument     = errors.New("invalid argument")
)
