package cracktime

import "math"

// Charspace sizes per character class, the usual brute-force assumption of
// 26 lower, 26 upper, 10 digits and 33 printable specials.
const (
	lowerSpace   = 26
	upperSpace   = 26
	digitSpace   = 10
	specialSpace = 33
)

// gpuBenchmark is an approximate hashes-per-second figure for one card and
// one algorithm, in the ballpark of published hashcat benchmark runs.
type gpuBenchmark struct {
	name  string
	rates map[string]float64
}

// Algorithms ordered from the fastest to crack to the slowest.
var hashAlgorithms = []string{"NTLM", "MD5", "SHA-256", "bcrypt"}

var gpuBenchmarks = []gpuBenchmark{
	{
		name: "GTX 1080",
		rates: map[string]float64{
			"NTLM":    41e9,
			"MD5":     25e9,
			"SHA-256": 2.9e9,
			"bcrypt":  13e3,
		},
	},
	{
		name: "RTX 3090",
		rates: map[string]float64{
			"NTLM":    110e9,
			"MD5":     65e9,
			"SHA-256": 9.4e9,
			"bcrypt":  96e3,
		},
	},
	{
		name: "RTX 4090",
		rates: map[string]float64{
			"NTLM":    288e9,
			"MD5":     164e9,
			"SHA-256": 22e9,
			"bcrypt":  184e3,
		},
	},
}

// AlgorithmEstimate is the time for one GPU to exhaust the keyspace against
// one hash algorithm.
type AlgorithmEstimate struct {
	Algorithm string  `json:"algorithm"`
	Seconds   float64 `json:"seconds"`
	Display   string  `json:"display"`
}

// GPUEstimate groups the per-algorithm estimates of a single card.
type GPUEstimate struct {
	Name       string              `json:"name"`
	Algorithms []AlgorithmEstimate `json:"algorithms"`
}

// SimulateHashcat computes the brute-force exhaustion time charspace^length
// divided by a fixed per-card benchmark rate, for a few representative GPUs.
// This path is intentionally independent of the score-bracket estimate in
// Estimate; the product shows both side by side.
func SimulateHashcat(password string) []GPUEstimate {
	space := Charspace(password)
	length := len([]rune(password))
	keyspace := math.Pow(float64(space), float64(length))

	results := make([]GPUEstimate, 0, len(gpuBenchmarks))
	for _, gpu := range gpuBenchmarks {
		algos := make([]AlgorithmEstimate, 0, len(hashAlgorithms))
		for _, algo := range hashAlgorithms {
			seconds := keyspace / gpu.rates[algo]
			if password == "" {
				seconds = 0
			}
			algos = append(algos, AlgorithmEstimate{
				Algorithm: algo,
				Seconds:   seconds,
				Display:   FormatDuration(seconds),
			})
		}
		results = append(results, GPUEstimate{Name: gpu.name, Algorithms: algos})
	}
	return results
}

// Charspace counts the distinct characters available given which classes
// appear in the password.
func Charspace(password string) int {
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	space := 0
	if lower {
		space += lowerSpace
	}
	if upper {
		space += upperSpace
	}
	if digit {
		space += digitSpace
	}
	if special {
		space += specialSpace
	}
	return space
}
