package schema

const OrderSchemaTextV1 = `{
	"type": "record",
	"namespace": "orders",
	"name": "order",
	"fields" : [
		{"name": "order_number", "type": "string"},
		{"name": "region", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "order_item",
				"fields": [
					{"name": "name", "type": "string"},
					{"name": "quantity", "type": "long"},
					{"name": "unit_price", "type": "long"}
				]
			}
		}},
		{"name": "subtotal", "type": "long"},
		{"name": "shipping_fee", "type": "long"},
		{"name": "total", "type": "long"},
		{"name": "confirmed_at", "type": "long"},
		{"name": "payment_method", "type": "string"}
	]
}`

type (
	OrderV1 struct {
		OrderNumber   string        `avro:"order_number"`
		Region        string        `avro:"region"`
		Items         []OrderItemV1 `avro:"items"`
		Subtotal      int           `avro:"subtotal"`
		ShippingFee   int           `avro:"shipping_fee"`
		Total         int           `avro:"total"`
		ConfirmedAt   int64         `avro:"confirmed_at"`
		PaymentMethod string        `avro:"payment_method"`
	}

	OrderItemV1 struct {
		Name      string `avro:"name"`
		Quantity  int    `avro:"quantity"`
		UnitPrice int    `avro:"unit_price"`
	}
)

// RegionStatsSchemaTextV1 describes the per-region aggregate kept in
// the stats group table. Not registry managed: the table is private to
// the aggregation group.
const RegionStatsSchemaTextV1 = `{
	"type": "record",
	"namespace": "orders",
	"name": "region_stats",
	"fields" : [
		{"name": "orders", "type": "long"},
		{"name": "revenue", "type": "long"}
	]
}`

type RegionStatsV1 struct {
	Orders  int64 `avro:"orders"`
	Revenue int64 `avro:"revenue"`
}
