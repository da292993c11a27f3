// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/escrowd/account"
	"github.com/bitmark-inc/escrowd/fault"
)

// argon2i parameters
const (
	keyIterations  = 5
	keyMemory      = 1 << 16
	keyParallelism = 4
	keyLength      = 32
)

// Private - decrypted identity
type Private struct {
	KeyPair     *account.KeyPair `json:"-"`
	Account     account.Account  `json:"account"`
	Seed        string           `json:"seed"`
	Description string           `json:"description"`
}

// encryptIdentity - seal the seed text with a password
func encryptIdentity(password string, description string, keyPair *account.KeyPair) (*Identity, error) {
	salt, key, err := hashPassword(password)
	if nil != err {
		return nil, err
	}

	data, err := encryptData(keyPair.SeedString(), key)
	if nil != err {
		return nil, err
	}

	text, _ := salt.MarshalText()
	return &Identity{
		Description: description,
		Account:     keyPair.Account.String(),
		Data:        data,
		Salt:        string(text),
	}, nil
}

// decryptIdentity - check if password unlocks data in the configuration file
func decryptIdentity(password string, identity *Identity) (*Private, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if err != nil || identity.Data == "" {
		return nil, fault.NotPrivateKey
	}

	key := generateKey(password, salt)

	seed, err := decryptData(identity.Data, key)
	if err != nil {
		return nil, fault.WrongPassword
	}

	keyPair, err := account.KeyPairFromBase58Seed(seed)
	if err != nil {
		return nil, err
	}

	r := Private{
		KeyPair:     keyPair,
		Account:     keyPair.Account,
		Seed:        seed,
		Description: identity.Description,
	}
	return &r, nil
}

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if err != nil {
		return nil, nil, err
	}

	return salt, generateKey(password, salt), nil
}

func generateKey(password string, salt *Salt) *[32]byte {
	hash := argon2.Key([]byte(password), salt.Bytes(), keyIterations, keyMemory, keyParallelism, keyLength)

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey
}

// encrypt a string and convert to hex
func encryptData(data string, secretKey *[32]byte) (string, error) {

	// ensure data not too small or too large
	l := len(data)
	if l < 32 || l >= 16384 {
		return "", fault.CryptoFailed
	}

	// random 192 bit nonce per message
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fault.CryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
func decryptData(ciphertext string, secretKey *[32]byte) (string, error) {

	if ciphertext == "" {
		return "", fault.CryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	if len(encrypted) <= 24 {
		return "", fault.CryptoFailed
	}

	// the nonce is stored in front of the sealed data
	var nonce [24]byte
	copy(nonce[:], encrypted[:24])

	decrypted, ok := secretbox.Open(nil, encrypted[24:], &nonce, secretKey)
	if !ok {
		return "", fault.CryptoFailed
	}

	return string(decrypted), nil
}
