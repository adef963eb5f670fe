package contract

import (
	"bytes"
	"encoding/binary"
	"errors"

	"acdm_platform/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount scaling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress dumps the canonical address string.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	val, err := r.readUint64()
	return int64(val), err
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	return Amount(val), err
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return sdk.Address(s), err
}

// EncodeStakePosition serializes a staking entry for host storage.
func EncodeStakePosition(p *StakePosition) []byte {
	w := newWriter()
	w.writeAmount(p.Amount)
	w.writeInt64(p.StakedAt)
	w.writeInt64(p.LastClaimAt)
	return w.bytes()
}

// DecodeStakePosition rehydrates a staking entry, failing loudly on short blobs.
func DecodeStakePosition(data []byte) (*StakePosition, error) {
	r := newReader(data)
	var p StakePosition
	var err error
	if p.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.StakedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.LastClaimAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &p, nil
}

func encodeCommand(w *binWriter, c *Command) {
	w.buf.WriteByte(byte(c.Kind))
	w.writeUint64(c.Value)
	w.writeAddress(c.Addr)
}

func decodeCommand(r *binReader) (Command, error) {
	var c Command
	kind, err := r.readByte()
	if err != nil {
		return c, err
	}
	c.Kind = CommandKind(kind)
	if c.Value, err = r.readUint64(); err != nil {
		return c, err
	}
	if c.Addr, err = r.readAddress(); err != nil {
		return c, err
	}
	return c, nil
}

// EncodeProposal squeezes the full proposal record into the binary form.
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeUint64(p.Id)
	w.writeAddress(p.Recipient)
	w.writeString(p.Description)
	encodeCommand(w, &p.Cmd)
	w.writeAmount(p.VotesFor)
	w.writeAmount(p.VotesAgainst)
	w.writeInt64(p.Deadline)
	w.writeBool(p.Finished)
	w.buf.WriteByte(byte(p.Status))
	return w.bytes()
}

// DecodeProposal is the inverse of EncodeProposal.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	var p Proposal
	var err error
	if p.Id, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Recipient, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Cmd, err = decodeCommand(r); err != nil {
		return nil, err
	}
	if p.VotesFor, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.VotesAgainst, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.Deadline, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.Finished, err = r.readBool(); err != nil {
		return nil, err
	}
	status, err := r.readByte()
	if err != nil {
		return nil, err
	}
	p.Status = ProposalStatus(status)
	return &p, nil
}

// EncodeVoteReceipt stores the applied weight so re-votes only add the delta.
func EncodeVoteReceipt(v *VoteReceipt) []byte {
	w := newWriter()
	w.writeAmount(v.Applied)
	w.writeBool(v.Against)
	return w.bytes()
}

// DecodeVoteReceipt is the inverse of EncodeVoteReceipt.
func DecodeVoteReceipt(data []byte) (*VoteReceipt, error) {
	r := newReader(data)
	var v VoteReceipt
	var err error
	if v.Applied, err = r.readAmount(); err != nil {
		return nil, err
	}
	if v.Against, err = r.readBool(); err != nil {
		return nil, err
	}
	return &v, nil
}

// EncodeOrder serializes a sell offer including its remaining volume.
func EncodeOrder(o *Order) []byte {
	w := newWriter()
	w.writeUint64(o.Id)
	w.writeAddress(o.Seller)
	w.writeAmount(o.Amount)
	w.writeAmount(o.Eth)
	w.writeAmount(o.Remaining)
	return w.bytes()
}

// DecodeOrder is the inverse of EncodeOrder.
func DecodeOrder(data []byte) (*Order, error) {
	r := newReader(data)
	var o Order
	var err error
	if o.Id, err = r.readUint64(); err != nil {
		return nil, err
	}
	if o.Seller, err = r.readAddress(); err != nil {
		return nil, err
	}
	if o.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if o.Eth, err = r.readAmount(); err != nil {
		return nil, err
	}
	if o.Remaining, err = r.readAmount(); err != nil {
		return nil, err
	}
	return &o, nil
}
