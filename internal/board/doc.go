// Package board implements the bitboard position model of a chess
// engine: square/piece primitives, the attack oracle, the mutable
// Position with incremental Zobrist hashing and piece-square
// accumulation, make/undo of moves (including castling, en passant,
// promotion, and null moves), the legality filter, the static exchange
// evaluator, draw detection, and game-phase classification.
//
// The search algorithm, the evaluation function proper, the
// transposition table, the opening book, and the UCI loop are external
// collaborators and live outside this package.
package board
