package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// copyView maps a read model onto a response struct by field name.
func copyView[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, err
	}
	return &dst, nil
}

func copyViews[T any, V any](src []*V) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, v := range src {
		dst, err := copyView[T](v)
		if err != nil {
			return nil, err
		}
		out = append(out, dst)
	}
	return out, nil
}
