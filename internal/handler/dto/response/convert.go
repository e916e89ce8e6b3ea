package response

import (
	"internship-checkout/internal/domain/money"

	"github.com/jinzhu/copier"
)

// copyOptions maps domain amounts to plain rupee numbers for JSON.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Amount{},
			DstType: float64(0),
			Fn: func(src any) (any, error) {
				return src.(money.Amount).Float64(), nil
			},
		},
		{
			SrcType: (*money.Amount)(nil),
			DstType: (*float64)(nil),
			Fn: func(src any) (any, error) {
				a, _ := src.(*money.Amount)
				if a == nil {
					return (*float64)(nil), nil
				}
				f := a.Float64()
				return &f, nil
			},
		},
	},
}

func copyInto(to, from any) error {
	return copier.CopyWithOption(to, from, copyOptions)
}
