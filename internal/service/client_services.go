package service

import (
	"github.com/MKhiriev/go-custody/internal/adapter"
	"github.com/MKhiriev/go-custody/internal/crypto"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	WalletService  ClientWalletService
	CustodyService ClientCustodyService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, walletStorage store.SnapshotRepository, keyChain crypto.KeyChain, logger *logger.Logger) *ClientServices {
	wallet := NewClientWalletService(walletStorage, keyChain, logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		WalletService:  wallet,
		CustodyService: NewClientCustodyService(serverAdapter, wallet, logger),
	}
}
