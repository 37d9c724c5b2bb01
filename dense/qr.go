// SPDX-License-Identifier: MIT

// Package dense: Householder QR factorization (dgeqrf-style packed storage).
package dense

// QR factors the m×n matrix a IN PLACE: on return the upper triangle of a
// holds R and each column j stores, below the diagonal, the tail of the
// Householder vector v_j (its leading component is an implicit 1). The
// returned tau holds one reflection coefficient per column, so every H_j can
// be reassembled as I − tau[j]·v_j·v_jᵗ.
//
// Implementation:
//   - Stage 1: ValidateNotNil; allocate tau of length min(m,n) and one
//     reusable Householder scratch vector.
//   - Stage 2: For each column j: copy the sub-column a(j..m-1, j) into v and
//     take its norm; a norm below Epsilon[T]() records tau[j] = 0 and skips
//     the column (degenerate column, zero reflection). Otherwise pick
//     sign = +1 when v[0] ≥ 0 else −1 (so v[0] += sign·norm never cancels),
//     set beta = sign·norm, v[0] += beta, re-check the adjusted vector's norm
//     for degeneracy, then normalize v by its own first element so v[0] == 1.
//     The coefficient is tau[j] = |v0| / |beta| where v0 is the
//     pre-normalization leading component — the exact reflector coefficient
//     for a v scaled to unit leading entry, which makes every H_j orthogonal
//     and self-inverse (see the round-trip tests). Apply
//     a := a − tau[j]·v·(vᵗa) over the trailing submatrix (rows j..m-1,
//     columns j..n-1) and store v's tail back below the diagonal of column j.
//
// Behavior highlights:
//   - Always succeeds for a valid matrix: degenerate columns contribute a
//     zero reflection rather than an error.
//
// Returns:
//   - []T: tau, length min(m,n).
//
// Errors:
//   - ErrNilMatrix only.
//
// Determinism:
//   - Fixed column order; sign choice depends only on input values.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(m) scratch.
func QR[T Float](a *Dense[T]) ([]T, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, kernelErrorf(opQR, err)
	}

	m, n := a.r, a.c
	k := m
	if n < k {
		k = n
	}
	tau := make([]T, k)
	eps := Epsilon[T]()
	v := make([]T, m) // Householder scratch, v[0..m-j-1] used at column j

	var (
		i, j, jj   int // loop iterators (jj walks trailing columns)
		norm       T   // sub-column Euclidean norm
		sign, beta T   // reflection sign and the ±norm shift
		v0         T   // leading component before normalization
		sum        T   // projection coefficient vᵗ·a(:,jj)
	)
	for j = 0; j < k; j++ {
		// Extract the sub-column a(j..m-1, j).
		for i = j; i < m; i++ {
			v[i-j] = a.data[a.index(i, j)]
		}
		sub := v[:m-j]

		norm = Nrm2(sub)
		if norm < eps {
			tau[j] = 0 // degenerate column: zero reflection
			continue
		}

		// Sign chosen to avoid cancellation when shifting the leading entry.
		sign = 1
		if sub[0] < 0 {
			sign = -1
		}
		beta = sign * norm
		sub[0] += beta

		if Nrm2(sub) < eps {
			tau[j] = 0
			continue
		}

		// Normalize to a unit leading component; tau is the exact reflector
		// coefficient |v0|/|beta| for this scaling.
		v0 = sub[0]
		Scal(sub, 1/v0)
		sub[0] = 1
		tau[j] = Abs(v0) / Abs(beta)

		// Apply H_j to the trailing submatrix: a := a − tau·v·(vᵗa).
		for jj = j; jj < n; jj++ {
			sum = 0
			for i = j; i < m; i++ {
				sum += sub[i-j] * a.data[a.index(i, jj)]
			}
			sum *= tau[j]
			for i = j; i < m; i++ {
				a.data[a.index(i, jj)] -= sum * sub[i-j]
			}
		}

		// Pack the vector's tail below the diagonal of column j.
		for i = j + 1; i < m; i++ {
			a.data[a.index(i, j)] = sub[i-j]
		}
	}

	return tau, nil
}
