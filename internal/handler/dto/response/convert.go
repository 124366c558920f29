package response

import (
	"pos-terminal/internal/domain/pricing"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// money renders amounts with two decimals; views keep full precision.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return pricing.Display(src.(decimal.Decimal)), nil
			},
		},
	},
}

func copyView(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}
