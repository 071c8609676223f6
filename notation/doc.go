// SPDX-License-Identifier: MIT

// Package notation reads and writes tensors in nested-bracket text form.
//
// 🚀 What & Why
//
//	The bracket notation is the text format people type and paste tensors in:
//
//	  [[[1, 2]; [3, 4]], [[5, 6]; [7, 8]]]
//
//	Innermost lists separate values with ",", the level above joins rows
//	with ";", outer levels use "," again. Format produces the canonical
//	layout; Parse accepts any mix of the two separators.
//
// ✨ Format rules
//
//   - scalar → two decimals ("%.2f"); empty list → "[]".
//   - depth 1 → "[1.00, 2.00]"; depth 2 → "[[1.00, 2.00]; [3.00, 4.00]]".
//   - depth ≥ 3 → every level above the last two puts one element per line,
//     each element but the last followed by ",", indented two spaces per
//     level, closing bracket on its own line at the parent's indentation.
//
// ✨ Parse rules
//
//   - "#" starts a comment running to the end of the line.
//   - "," and ";" are interchangeable element separators.
//   - numbers use Go float syntax (sign, decimals, exponent).
//   - empty elements, unbalanced brackets and trailing text → ErrSyntax
//     (the message carries the byte offset); a top-level scalar → ErrNotList.
//   - WithDecimalComma rewrites "digit,digit" to "digit.digit" first.
//
// Values are printed with two decimals, so Parse(Format(t)) equals t up to
// rounding to 0.01.
package notation
