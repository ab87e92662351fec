package repository

import (
	"math"
	"math/rand/v2"

	"github.com/okian/huntersfinds/internal/domain/model"
)

// Treap-based order-statistic index over rated items of one kind.
//
// Ordering: score DESC, then insertion sequence ASC. "less" means ranks
// earlier, so in-order traversal yields the leaderboard from best to worst
// and ties keep the order items were added in.

// scoreScale is the fixed-point factor. Composite scores carry one decimal.
const scoreScale = 1_000_000

type scoreFP int64

func toFixedPoint(x float64) scoreFP {
	if math.IsNaN(x) {
		return 0
	}
	scaled := x * scoreScale
	if scaled > float64(math.MaxInt64) {
		return scoreFP(math.MaxInt64)
	}
	if scaled < float64(math.MinInt64) {
		return scoreFP(math.MinInt64)
	}
	return scoreFP(math.Round(scaled))
}

// record is what the index knows about one item.
type record struct {
	score scoreFP
	seq   uint64
	item  model.RatedItem
}

type node struct {
	id    string
	score scoreFP
	seq   uint64
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

// less returns true if (aScore, aSeq) should appear before (bScore, bSeq).
func less(aScore scoreFP, aSeq uint64, bScore scoreFP, bSeq uint64) bool {
	if aScore != bScore {
		return aScore > bScore // higher score ranks earlier
	}
	return aSeq < bSeq // earlier insertion ranks earlier
}

func rotateRight(y *node) *node {
	x := y.left
	t2 := x.right
	x.right = y
	y.left = t2
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	t2 := y.left
	y.left = x
	x.right = t2
	fix(x)
	fix(y)
	return y
}

func insert(n, nn *node) *node {
	if n == nil {
		return nn
	}
	if less(nn.score, nn.seq, n.score, n.seq) {
		n.left = insert(n.left, nn)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, nn)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

func deleteNode(n *node, score scoreFP, seq uint64) *node {
	if n == nil {
		return nil
	}
	if score == n.score && seq == n.seq {
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		if n.left.prio > n.right.prio {
			n = rotateRight(n)
			n.right = deleteNode(n.right, score, seq)
		} else {
			n = rotateLeft(n)
			n.left = deleteNode(n.left, score, seq)
		}
	} else if less(score, seq, n.score, n.seq) {
		n.left = deleteNode(n.left, score, seq)
	} else {
		n.right = deleteNode(n.right, score, seq)
	}
	fix(n)
	return n
}

// collectTopN appends up to limit ids in rank order.
func collectTopN(n *node, limit int, out *[]string) {
	if n == nil || len(*out) >= limit {
		return
	}
	collectTopN(n.left, limit, out)
	if len(*out) < limit {
		*out = append(*out, n.id)
	}
	if len(*out) < limit {
		collectTopN(n.right, limit, out)
	}
}

// before counts nodes that rank strictly earlier than (score, seq).
func before(n *node, score scoreFP, seq uint64) int {
	count := 0
	for n != nil {
		if less(n.score, n.seq, score, seq) {
			count += nsize(n.left) + 1
			n = n.right
		} else {
			n = n.left
		}
	}
	return count
}

// index is not safe for concurrent use; MemoryCatalog guards it.
type index struct {
	root *node
	byID map[string]record
	next uint64
	rng  *rand.Rand
}

func newIndex(seed uint64) *index {
	return &index{
		byID: make(map[string]record),
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// upsert adds item or moves it to its new score. A rescored item keeps its
// first insertion sequence.
func (x *index) upsert(item model.RatedItem) {
	score := toFixedPoint(item.Score)
	seq := x.next
	if old, ok := x.byID[item.ID]; ok {
		x.root = deleteNode(x.root, old.score, old.seq)
		seq = old.seq
	} else {
		x.next++
	}
	x.byID[item.ID] = record{score: score, seq: seq, item: item}
	x.root = insert(x.root, &node{id: item.ID, score: score, seq: seq, prio: x.rng.Uint64(), size: 1})
}

func (x *index) top(n int) []model.RatedItem {
	ids := make([]string, 0, min(n, len(x.byID)))
	collectTopN(x.root, n, &ids)
	out := make([]model.RatedItem, len(ids))
	for i, id := range ids {
		out[i] = x.byID[id].item
	}
	return out
}

func (x *index) position(id string) (int, bool) {
	rec, ok := x.byID[id]
	if !ok {
		return 0, false
	}
	return before(x.root, rec.score, rec.seq) + 1, true
}

func (x *index) count() int {
	return len(x.byID)
}
