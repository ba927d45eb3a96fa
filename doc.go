// Package feistel64 implements a small, didactic Feistel block cipher over
// 64-bit blocks, together with a handful of cryptanalysis tests used to
// characterize its diffusion.
//
// The cipher is NOT suitable for protecting real data. It makes no security
// claims and exists to make each step of a substitution-permutation Feistel
// design easy to inspect.
//
// # Construction
//
//   - 32 rounds over two 32-bit halves.
//   - Each round looks up the four bytes of one half in a round-specific
//     S-box whose entries are modular inverses mod 257, XORs the results and
//     rotates them.
//   - A fixed, key-independent permutation step runs after every round and
//     is undone at the start of every decryption round.
//   - 32 round keys are scheduled from the 64-bit master key. By default they
//     are exposed but not consumed by the rounds; [WithRoundKeyMixing] feeds
//     them into the round function.
//
// # Basic Usage
//
//	c, err := feistel64.NewCipher([]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext := c.EncryptBlock(0x4142434445464748)
//	plaintext := c.DecryptBlock(ciphertext)
//
// [Cipher] also satisfies [crypto/cipher.Block], so it can be combined with
// the standard library block modes.
//
// # Text and Hex Interface
//
// [Session] accepts a hexadecimal key and works on short strings:
//
//	s, err := feistel64.NewSession("0123456789ABCDEF")
//	_, hexCiphertext, err := s.Encrypt([]byte("ABCDEFGH"))
//	_, text, err := s.Decrypt(hexCiphertext)
//
// # Cryptanalysis
//
// [Cipher.Avalanche], [Cipher.Differential] and [Cipher.Linear] flip the
// lowest input bit or compare bit parities, and [Cipher.AvalancheSweep]
// flips each input bit in turn.
//
// # Thread Safety
//
// Cipher instances are safe for concurrent use. The S-box tables are built
// once using sync.Once and never modified afterwards.
package feistel64
