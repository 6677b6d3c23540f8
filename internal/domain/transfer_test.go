package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferIntentValidate_Valid(t *testing.T) {
	intent := TransferIntent{
		SenderAccount:   "1000000001",
		ReceiverAccount: "1000000002",
		Amount:          decimal.NewFromFloat(50.00),
		Note:            "rent",
	}

	assert.NoError(t, intent.Validate())
}

func TestTransferIntentValidate_MissingSelection(t *testing.T) {
	intent := TransferIntent{
		ReceiverAccount: "1000000002",
		Amount:          decimal.NewFromInt(10),
	}

	err := intent.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Please select both sender and receiver accounts", validationErr.Reason)
}

func TestTransferIntentValidate_NonPositiveAmount(t *testing.T) {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		intent := TransferIntent{
			SenderAccount:   "1000000001",
			ReceiverAccount: "1000000002",
			Amount:          amount,
		}

		err := intent.Validate()
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Amount must be greater than 0", validationErr.Reason)
	}
}

func TestTransferIntentValidate_SameAccount(t *testing.T) {
	intent := TransferIntent{
		SenderAccount:   "1000000001",
		ReceiverAccount: "1000000001",
		Amount:          decimal.NewFromInt(50),
	}

	err := intent.Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Sender and receiver accounts must be different", validationErr.Reason)
}
