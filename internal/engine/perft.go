package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// DivideResult is the number of leaf nodes below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth
// from the side to move. Depth 0 counts the position itself. The board is
// not modified.
func Perft(board *chess.Board, depth int) (uint64, error) {
	return perft(scratchCopy(board), depth, nil)
}

// Divide returns the perft count below each legal root move, in
// LegalMoves order.
func Divide(board *chess.Board, depth int) ([]DivideResult, error) {
	if depth < 1 {
		return nil, nil
	}
	scratch := scratchCopy(board)
	moves, err := LegalMoves(scratch, scratch.ToMove)
	if err != nil {
		return nil, err
	}

	results := make([]DivideResult, 0, len(moves))
	for _, m := range moves {
		makeMove(scratch, m)
		nodes, err := perft(scratch, depth-1, nil)
		if undoErr := UndoMove(scratch); err == nil {
			err = undoErr
		}
		if err != nil {
			return nil, err
		}
		results = append(results, DivideResult{Move: m, Nodes: nodes})
	}
	return results, nil
}

// DivideParallel computes the same result as Divide, counting each root
// subtree on a pool of workers that share a transposition cache.
func DivideParallel(board *chess.Board, depth, workers int) ([]DivideResult, error) {
	return divideParallel(board, depth, workers, hashing.NewPerftCache(0))
}

// divideParallel runs DivideParallel with a caller supplied cache, which
// may be shared between calls.
func divideParallel(board *chess.Board, depth, workers int, cache *hashing.PerftCache) ([]DivideResult, error) {
	if depth < 1 {
		return nil, nil
	}
	moves, err := LegalMoves(board, board.ToMove)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return []DivideResult{}, nil
	}

	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		nodes, err := perft(item.Board, item.Depth, cache)
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes, Error: err}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))
	pool.Start()

	go func() {
		for i, m := range moves {
			child := scratchCopy(board)
			makeMove(child, m)
			pool.Submit(worker.WorkItem{Board: child, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	results := make([]DivideResult, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
		}
		results[r.Index] = DivideResult{Move: r.Move, Nodes: r.Nodes}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(results []DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}

// perft walks the tree with makeMove and UndoMove on a board it owns.
// Subtrees of depth two or more are cached when cache is non-nil.
func perft(board *chess.Board, depth int, cache *hashing.PerftCache) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	var hash uint64
	useCache := cache != nil && depth >= 2
	if useCache {
		hash = hashing.GenerateZobristHash(board)
		if nodes, ok := cache.Get(hash, depth); ok {
			return nodes, nil
		}
	}

	moves, err := LegalMoves(board, board.ToMove)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, m := range moves {
		makeMove(board, m)
		n, err := perft(board, depth-1, cache)
		if undoErr := UndoMove(board); err == nil {
			err = undoErr
		}
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	if useCache {
		cache.Put(hash, depth, nodes)
	}
	return nodes, nil
}
