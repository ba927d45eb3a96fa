package feistel64

// config holds construction-time settings for a Cipher.
type config struct {
	sboxes         *SBoxSet
	roundKeyMixing bool
}

// Option configures a Cipher.
type Option func(*config)

// WithRoundKeyMixing makes every round XOR its scheduled round key into the
// half block before the S-box lookups.
//
// Without this option the round keys are scheduled but never used, so the
// ciphertext does not depend on the master key. Ciphertexts produced with and
// without the option are not interchangeable.
func WithRoundKeyMixing() Option {
	return func(c *config) {
		c.roundKeyMixing = true
	}
}

// WithSBoxes sets the substitution tables used by the cipher.
// The set must not be modified after the cipher is built. A nil set selects
// DefaultSBoxes.
func WithSBoxes(set *SBoxSet) Option {
	return func(c *config) {
		c.sboxes = set
	}
}
