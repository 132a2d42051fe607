package bolt

import (
	"encoding/binary"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/bindgate/internal/gen/domain"
	"github.com/haukened/bindgate/internal/gen/repos/denylist"
)

var (
	bucketPair  = []byte("pair")
	bucketClass = []byte("class")
	bucketMeta  = []byte("meta")

	keyVersion = []byte("version")
	keyUpdated = []byte("updated")
)

// boltStore implements denylist.Store using bbolt.
type boltStore struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path and ensures buckets exist.
func New(path string) (denylist.Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketPair, bucketClass, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltStore{db: db}, nil
}

func (s *boltStore) Close() error { return s.db.Close() }

// GetFirstMatch checks the class-wide bucket first, then the exact pair.
// Class-wide rules dominate: a class entry rejects every member.
func (s *boltStore) GetFirstMatch(class, member string) (domain.DenyRule, bool, error) {
	var (
		rule  domain.DenyRule
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketClass); b != nil {
			if v := b.Get([]byte(class)); v != nil {
				r, err := decodeRule(class, "", domain.DenyRuleClass, v)
				if err != nil {
					return err
				}
				rule, found = r, true
				return nil
			}
		}
		if b := tx.Bucket(bucketPair); b != nil {
			key := domain.MemberKey(class, member)
			if v := b.Get([]byte(key)); v != nil {
				r, err := decodeRule(class, member, domain.DenyRulePair, v)
				if err != nil {
					return err
				}
				rule, found = r, true
			}
		}
		return nil
	})
	if err != nil {
		return domain.DenyRule{}, false, err
	}
	return rule, found, nil
}

// RebuildAll replaces the whole snapshot in one write transaction: both rule
// buckets are dropped and repopulated, then version metadata is written.
func (s *boltStore) RebuildAll(rules []domain.DenyRule, version uint64, updatedUnix int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPair, bucketClass} {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return err
				}
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}

		pairs := tx.Bucket(bucketPair)
		classes := tx.Bucket(bucketClass)
		for _, r := range rules {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("invalid rule %q: %w", r.Key(), err)
			}
			v := encodeRule(r)
			switch r.Kind {
			case domain.DenyRuleClass:
				if err := classes.Put([]byte(r.Class), v); err != nil {
					return err
				}
			default:
				if err := pairs.Put([]byte(r.Key()), v); err != nil {
					return err
				}
			}
		}

		meta := tx.Bucket(bucketMeta)
		if meta == nil {
			var err error
			meta, err = tx.CreateBucket(bucketMeta)
			if err != nil {
				return err
			}
		}
		if err := meta.Put(keyVersion, encodeUint64(version)); err != nil {
			return err
		}
		return meta.Put(keyUpdated, encodeUint64(uint64(updatedUnix)))
	})
}

func (s *boltStore) Stats() denylist.StoreStats {
	st := denylist.StoreStats{}
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketPair); b != nil {
			st.PairCount = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketClass); b != nil {
			st.ClassCount = uint64(b.Stats().KeyN)
		}
		if b := tx.Bucket(bucketMeta); b != nil {
			if v := b.Get(keyVersion); len(v) == 8 {
				st.Version = binary.BigEndian.Uint64(v)
			}
			if v := b.Get(keyUpdated); len(v) == 8 {
				st.UpdatedUnix = int64(binary.BigEndian.Uint64(v))
			}
		}
		return nil
	})
	return st
}

// Value layout: reason (1 byte) | addedAt unix seconds (8 bytes BE) | source.
// The kind is implied by the bucket, the key carries class/member.

func encodeRule(r domain.DenyRule) []byte {
	v := make([]byte, 0, 9+len(r.Source))
	v = append(v, byte(r.Reason))
	v = binary.BigEndian.AppendUint64(v, uint64(r.AddedAt.Unix()))
	v = append(v, r.Source...)
	return v
}

func decodeRule(class, member string, kind domain.DenyRuleKind, v []byte) (domain.DenyRule, error) {
	if len(v) < 9 {
		return domain.DenyRule{}, fmt.Errorf("denylist value too short: %d bytes", len(v))
	}
	return domain.DenyRule{
		Class:   class,
		Member:  member,
		Kind:    kind,
		Reason:  domain.Reason(v[0]),
		AddedAt: time.Unix(int64(binary.BigEndian.Uint64(v[1:9])), 0).UTC(),
		Source:  string(v[9:]),
	}, nil
}

func encodeUint64(u uint64) []byte {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, u)
	return v
}
