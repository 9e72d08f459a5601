package ledger

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInsufficientFunds is returned when the paying principal cannot cover
// both legs of a transfer.
var ErrInsufficientFunds = errors.New("ledger: insufficient funds")

// Transfer is the external value-transfer collaborator. TransferPair moves
// the recipient share and the protocol fee in one call so a failed second
// leg can never strand a completed first leg. Implementations must apply
// both legs or neither.
type Transfer interface {
	TransferPair(from, to, feeTo [20]byte, toAmount, feeAmount *big.Int) error
}

// balanceState is the slice of state-manager functionality the book
// ledger needs.
type balanceState interface {
	BalanceGet(addr [20]byte) (*big.Int, error)
	BalancePut(addr [20]byte, amount *big.Int) error
}

// Book is a Transfer implementation backed by the state manager's balance
// records. Because its writes go through the same staged overlay as the
// engine's, a discarded transition rolls the transfer back with it.
type Book struct {
	state balanceState
}

// NewBook constructs a book ledger over the provided balance state.
func NewBook(state balanceState) *Book {
	return &Book{state: state}
}

// Mint credits the supplied address. Intended for genesis seeding and
// tests; the engine itself never mints.
func (b *Book) Mint(addr [20]byte, amount *big.Int) error {
	if b == nil || b.state == nil {
		return errors.New("ledger: book not initialised")
	}
	if amount == nil || amount.Sign() < 0 {
		return errors.New("ledger: mint amount must be non-negative")
	}
	balance, err := b.state.BalanceGet(addr)
	if err != nil {
		return err
	}
	return b.state.BalancePut(addr, new(big.Int).Add(balance, amount))
}

// Balance returns the current balance for the supplied address.
func (b *Book) Balance(addr [20]byte) (*big.Int, error) {
	if b == nil || b.state == nil {
		return nil, errors.New("ledger: book not initialised")
	}
	return b.state.BalanceGet(addr)
}

// TransferPair debits from once for the sum of both legs and credits the
// recipient and fee addresses. The debit is checked before any write, so
// either both legs apply or the call fails with ErrInsufficientFunds.
func (b *Book) TransferPair(from, to, feeTo [20]byte, toAmount, feeAmount *big.Int) error {
	if b == nil || b.state == nil {
		return errors.New("ledger: book not initialised")
	}
	if toAmount == nil || toAmount.Sign() < 0 {
		return fmt.Errorf("ledger: recipient amount must be non-negative")
	}
	if feeAmount == nil || feeAmount.Sign() < 0 {
		return fmt.Errorf("ledger: fee amount must be non-negative")
	}
	total := new(big.Int).Add(toAmount, feeAmount)
	if total.Sign() == 0 {
		return nil
	}
	fromBalance, err := b.state.BalanceGet(from)
	if err != nil {
		return err
	}
	if fromBalance.Cmp(total) < 0 {
		return ErrInsufficientFunds
	}
	if err := b.state.BalancePut(from, new(big.Int).Sub(fromBalance, total)); err != nil {
		return err
	}
	if toAmount.Sign() > 0 {
		toBalance, err := b.state.BalanceGet(to)
		if err != nil {
			return err
		}
		if err := b.state.BalancePut(to, new(big.Int).Add(toBalance, toAmount)); err != nil {
			return err
		}
	}
	if feeAmount.Sign() > 0 {
		feeBalance, err := b.state.BalanceGet(feeTo)
		if err != nil {
			return err
		}
		if err := b.state.BalancePut(feeTo, new(big.Int).Add(feeBalance, feeAmount)); err != nil {
			return err
		}
	}
	return nil
}
