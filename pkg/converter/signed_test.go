package converter

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yleoer/numeral/pkg/numeral"
)

func newTestConverter() NumeralConverter {
	return NewSignedConverter(log.New(io.Discard, "", 0))
}

func TestToChinese(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"positive", "1001", "一千零一"},
		{"negative", "-1001", "负一千零一"},
		{"explicit plus", "+10", "一十"},
		{"surrounding space", "  100 \n", "一百"},
		{"negative zero", "-0", "零"},
		{"full width digits", "１００００", "一万"},
		{"full width minus", "－５", "负五"},
		{"empty", "", ""},
		{"blank", "   ", ""},
	}
	c := newTestConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ToChinese(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToChineseErrors(t *testing.T) {
	tests := []struct {
		raw  string
		kind numeral.Kind
	}{
		{"abc", numeral.KindInvalidType},
		{"-", numeral.KindInvalidType},
		{"--5", numeral.KindInvalidType},
		{"1 000", numeral.KindInvalidType},
		{"-12345678901234567", numeral.KindTooLong},
	}
	c := newTestConverter()
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := c.ToChinese(tt.raw)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.Equal(t, tt.kind, numeral.KindOf(err))
			assert.Contains(t, err.Error(), tt.raw)
		})
	}
}
