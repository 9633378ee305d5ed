package entity

import (
	"fmt"
	"strings"
)

// Channel canal de venta con estructura de comisiones propia.
type Channel string

const (
	ChannelStore  Channel = "store"  // tienda física: comisión bancaria sobre el precio con impuestos
	ChannelOnline Channel = "online" // plataforma: comisión sobre el importe sin impuestos
)

// ParseChannel valida el canal recibido.
func ParseChannel(s string) (Channel, error) {
	switch Channel(strings.ToLower(strings.TrimSpace(s))) {
	case ChannelStore:
		return ChannelStore, nil
	case ChannelOnline:
		return ChannelOnline, nil
	default:
		return "", fmt.Errorf("canal desconocido %q", s)
	}
}

// Channels lista los canales en orden de presentación.
func Channels() []Channel {
	return []Channel{ChannelStore, ChannelOnline}
}

// Margin porcentaje de ganancia aplicado como columna de un canal. (Value, Type) es único.
type Margin struct {
	ID    string  `json:"id"`
	Value Number  `json:"value"`
	Type  Channel `json:"type"`
}

// SameAs indica si dos márgenes ocupan la misma columna.
func (m Margin) SameAs(value float64, ch Channel) bool {
	return m.Type == ch && m.Value.Float() == value
}
