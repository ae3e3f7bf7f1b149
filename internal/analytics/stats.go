package analytics

import (
	"math"

	"github.com/dmarques/financo/internal/transaction"
)

// outlierZScore is how many standard deviations from the mean a
// transaction amount must be to count as unusual.
const outlierZScore = 2.0

// Outlier flags a transaction whose amount is unusually far from the mean
// of its type.
type Outlier struct {
	Transaction *transaction.Transaction
	ZScore      float64
}

// Outliers flags transactions of the given type whose amounts deviate
// from the mean by more than two standard deviations. Fewer than two
// samples, or zero variance, yields no outliers.
func (e *Engine) Outliers(txType transaction.Type) []Outlier {
	var amounts []float64

	var txs []*transaction.Transaction

	for _, tx := range e.snap.Transactions {
		if tx.Type != txType {
			continue
		}

		amounts = append(amounts, float64(tx.AmountCents))
		txs = append(txs, tx)
	}

	if len(amounts) < 2 {
		return nil
	}

	mean := mean(amounts)

	stdDev := math.Sqrt(populationVariance(amounts, mean))
	if stdDev == 0 {
		return nil
	}

	var outliers []Outlier

	for i, amount := range amounts {
		z := (amount - mean) / stdDev
		if math.Abs(z) > outlierZScore {
			outliers = append(outliers, Outlier{Transaction: txs[i], ZScore: z})
		}
	}

	return outliers
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func populationVariance(values []float64, mean float64) float64 {
	var sum float64

	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return sum / float64(len(values))
}
