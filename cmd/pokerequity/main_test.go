package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDeadMaskCombinesBoardAndDead(t *testing.T) {
	mask, err := parseDeadMask("JsTs2c", "Ah")
	require.NoError(t, err)
	require.Equal(t, 4, mask.Count())
}

func TestParseDeadMaskEmpty(t *testing.T) {
	mask, err := parseDeadMask("", "")
	require.NoError(t, err)
	require.Equal(t, 0, mask.Count())
}

func TestParseDeadMaskRejectsDuplicates(t *testing.T) {
	_, err := parseDeadMask("AsKs", "As")
	require.Error(t, err)
}

func TestParseDeadMaskRejectsInvalidCard(t *testing.T) {
	_, err := parseDeadMask("XxYy", "")
	require.Error(t, err)
}
