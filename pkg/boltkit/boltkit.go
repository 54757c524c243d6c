// Package boltkit exposes bolt buckets as seqkit sequences.
//
// A bucket sequence borrows the transaction of the bucket it was made from.
// It must only be pulled while that transaction is open,
// and the returned key and value slices follow bolt's own rules:
// they are only valid for the life of the transaction.
package boltkit

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/pullseq/pkg/seqkit"
)

// Entry is a key/value pair of a bucket.
// Value is nil when the key belongs to a nested bucket.
type Entry struct {
	Key   []byte
	Value []byte
}

// Entries returns the key/value pairs of a bucket, ordered by key.
// The sequence is double-ended, the two ends walk with separate cursors,
// and the sequence is exhausted once they meet.
func Entries(b *bolt.Bucket) *EntrySeq {
	return &EntrySeq{front: b.Cursor(), back: b.Cursor()}
}

type EntrySeq struct {
	front, back       *bolt.Cursor
	frontKey, backKey []byte
	frontOn, backOn   bool
	done              bool
}

func (s *EntrySeq) Pull() (Entry, bool) {
	if s.done {
		return Entry{}, false
	}
	var k, v []byte
	if s.frontOn {
		k, v = s.front.Next()
	} else {
		k, v = s.front.First()
		s.frontOn = true
	}
	if k == nil || (s.backOn && 0 <= bytes.Compare(k, s.backKey)) {
		s.done = true
		return Entry{}, false
	}
	s.frontKey = k
	return Entry{Key: k, Value: v}, true
}

func (s *EntrySeq) PullBack() (Entry, bool) {
	if s.done {
		return Entry{}, false
	}
	var k, v []byte
	if s.backOn {
		k, v = s.back.Prev()
	} else {
		k, v = s.back.Last()
		s.backOn = true
	}
	if k == nil || (s.frontOn && bytes.Compare(k, s.frontKey) <= 0) {
		s.done = true
		return Entry{}, false
	}
	s.backKey = k
	return Entry{Key: k, Value: v}, true
}

// Keys returns the keys of a bucket, ordered.
func Keys(b *bolt.Bucket) seqkit.DoubleEnded[[]byte] {
	return seqkit.Map[[]byte](Entries(b), func(e Entry) []byte { return e.Key })
}

// Prefix returns the entries whose key starts with prefix, ordered by key.
// The cursor seeks straight to the prefix,
// and the sequence ends at the first key past it.
func Prefix(b *bolt.Bucket, prefix []byte) seqkit.Seq[Entry] {
	var (
		c       = b.Cursor()
		started bool
	)
	seek := seqkit.Func[Entry](func() (Entry, bool) {
		var k, v []byte
		if started {
			k, v = c.Next()
		} else {
			k, v = c.Seek(prefix)
			started = true
		}
		return Entry{Key: k, Value: v}, k != nil
	})
	return seqkit.TakeWhile[Entry](seek, func(e Entry) bool {
		return bytes.HasPrefix(e.Key, prefix)
	})
}

// Put stores every remaining entry of seq in the bucket.
// It stops at the first entry bolt refuses, and returns bolt's error.
// The bucket must belong to a writable transaction.
func Put(b *bolt.Bucket, seq seqkit.Seq[Entry]) error {
	for {
		e, ok := seq.Pull()
		if !ok {
			return nil
		}
		if err := b.Put(e.Key, e.Value); err != nil {
			return err
		}
	}
}
