// Package comm provides packet transports between sampler, decoder and monitors.
package comm

import (
	"github.com/robotalks/xy2.go/pkg/msgs"
)

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// WriteMsg encodes a message as Typed and writes it as one packet.
func WriteMsg(w PacketWriter, msg msgs.Message) error {
	pkt, err := msgs.Encode(msg)
	if err != nil {
		return err
	}
	return w.WritePacket(pkt)
}

// ReadMsg reads one packet and decodes the Typed message.
func ReadMsg(r PacketReader) (msgs.Message, error) {
	pkt, err := r.ReadPacket()
	if err != nil {
		return nil, err
	}
	return msgs.Decode(pkt)
}
