// Package hashing detects repeated games and positions.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// DuplicateDetector tracks finished games and reports repeats.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by final position
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch  bool
	stored         int
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// MoveHash hashes the move texts
	MoveHash uint64
}

// NewDuplicateDetector creates a new duplicate detector.
// Without exactMatch, games reaching the same final position in the same
// number of plies are duplicates. A detector is not safe for concurrent use;
// records are checked in game order as they are written.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// Signature computes the signature of a finished game.
func Signature(rec *game.Record) (GameSignature, error) {
	hash, err := FENHash(rec.FinalFEN)
	if err != nil {
		return GameSignature{}, err
	}
	return GameSignature{
		Hash:      hash,
		MoveCount: rec.Plies(),
		MoveHash:  MoveSequenceHash(rec.Moves),
	}, nil
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(rec *game.Record) (bool, error) {
	sig, err := Signature(rec)
	if err != nil {
		return false, err
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true, nil
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false, nil
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.MoveCount != b.MoveCount {
		return false
	}
	if d.useExactMatch && a.MoveHash != b.MoveHash {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}
