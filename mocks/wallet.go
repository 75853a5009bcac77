package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

type Wallet struct {
	mock.Mock
}

func (w *Wallet) Connected() bool {
	args := w.Called()

	return args.Bool(0)
}

func (w *Wallet) Address() common.Address {
	args := w.Called()

	return args.Get(0).(common.Address)
}

func (w *Wallet) ChainID() *big.Int {
	args := w.Called()

	return args.Get(0).(*big.Int)
}

func (w *Wallet) SwitchChain(arg1 *big.Int) error {
	args := w.Called(arg1)

	return args.Error(0)
}

func (w *Wallet) TransactOpts(arg1 context.Context, arg2 *big.Int) (*bind.TransactOpts, error) {
	args := w.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bind.TransactOpts), args.Error(1)
}
