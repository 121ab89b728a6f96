package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type Order struct {
	OrderUID        string
	TrackNumber     string
	Entry           string
	Locale          string
	InternalSig     string
	CustomerID      string
	DeliveryService string
	ShardKey        string
	SmID            int
	DateCreated     time.Time
	OofShard        string

	// тут без указателей, потому что предполагается что эти данные всегда присутствуют
	Delivery Delivery
	Payment  Payment
	Items    []Item
}

// Marshal кодирует заказ для хранения в кеше. Декодирование через Unmarshal
// всегда возвращает независимую копию.
func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(Delivery{})
	gob.Register(Payment{})
	gob.Register(Item{})
}
