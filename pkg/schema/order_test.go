package schema

import (
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderV1(t *testing.T) {
	orderSchema, err := avro.Parse(OrderSchemaTextV1)
	require.NoError(t, err)

	vMarshal := OrderV1{
		OrderNumber: "260901-0042",
		Region:      "Ontario",
		Items: []OrderItemV1{
			{Name: "Marlboro Gold", Quantity: 2, UnitPrice: 45},
		},
		Subtotal:      90,
		ShippingFee:   18,
		Total:         108,
		ConfirmedAt:   1756738800,
		PaymentMethod: "alipay",
	}

	data, err := avro.Marshal(orderSchema, vMarshal)
	require.NoError(t, err)

	var vUnmarshal OrderV1
	err = avro.Unmarshal(orderSchema, data, &vUnmarshal)
	require.NoError(t, err)

	assert.Equal(t, vMarshal, vUnmarshal)
}

func TestRegionStatsV1(t *testing.T) {
	statsSchema, err := avro.Parse(RegionStatsSchemaTextV1)
	require.NoError(t, err)

	vMarshal := RegionStatsV1{Orders: 7, Revenue: 1250}

	data, err := AvroEncodeFn(statsSchema)(vMarshal)
	require.NoError(t, err)

	var vUnmarshal RegionStatsV1
	err = AvroDecodeFn(statsSchema)(data, &vUnmarshal)
	require.NoError(t, err)

	assert.Equal(t, vMarshal, vUnmarshal)
}
