// Package chance implements the randomness toys: coin flips, dice rolls,
// random integers, password and name generation, loot drops, and playlist
// shuffling.
//
// Every operation takes a seed and is deterministic with respect to it;
// callers that want fresh randomness obtain a seed from NewSeed. Password
// generation is the one exception: it always draws from crypto/rand.
package chance
