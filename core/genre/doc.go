// Package genre maps free-text catalog genre labels to the launcher's one-byte
// genre codes.
//
// Resolution runs in three stages and stops at the first hit:
//  1. Exact match against the fixed genre table.
//  2. Case-insensitive match against the same table.
//  3. An ordered list of uppercase keyword rules ("LIFE" and "SIM", "RPG", ...).
//     Rules are evaluated top to bottom, so a label matching several rules gets
//     the code of the first one.
//
// Anything else resolves to code 0, "(None)".
package genre
