// Package maze generates seeded grid mazes for demos, benchmarks and
// property tests of the search algorithms.
//
// Generate carves a perfect maze with a randomized backtracker (rooms on odd
// coordinates, walls between them) and can braid dead ends into loops.
// Perfect mazes have exactly one route between two rooms, so every search
// returns the same path; braided mazes let DFS and greedy search wander.
//
// The same non-zero Seed always yields the same maze.
package maze
