// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/escrowd/fault"
	"github.com/bitmark-inc/escrowd/rpc/certificate"
)

const (
	testingDirName = "testing"
	logCategory    = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestGet(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	cer, key, err := certgen.NewTLSCertPair("test", time.Now().Add(time.Hour), false, nil)
	assert.Nil(t, err, "certgen error")

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(logCategory),
		"test",
		string(cer),
		string(key),
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair(cer, key)

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	_, _, err := certificate.Get(logger.New(logCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "invalid pair accepted")
}

func TestGenerateAndLoad(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	certificateFileName := path.Join(testingDirName, "rpc.crt")
	keyFileName := path.Join(testingDirName, "rpc.key")

	err := certificate.Generate("test", certificateFileName, keyFileName, false, []string{"localhost"})
	assert.Nil(t, err, "generate error")

	cer, _ := ioutil.ReadFile(certificateFileName)
	key, _ := ioutil.ReadFile(keyFileName)
	pair, err := tls.X509KeyPair(cer, key)
	assert.Nil(t, err, "generated pair")

	_, fingerprint, err := certificate.Load(logger.New(logCategory), "test", certificateFileName, keyFileName)
	assert.Nil(t, err, "load error")
	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")

	err = certificate.Generate("test", certificateFileName, path.Join(testingDirName, "other.key"), false, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "certificate overwritten")

	err = certificate.Generate("test", path.Join(testingDirName, "other.crt"), keyFileName, false, nil)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "key overwritten")
}
