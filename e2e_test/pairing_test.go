//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/chordnova/cmd"
	"github.com/jsphweid/chordnova/config"
	"github.com/jsphweid/chordnova/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var srv *httptest.Server

func TestMain(m *testing.M) {
	cfg, err := config.Load(os.Getenv("CHORDNOVA_CONFIG"))
	if err != nil {
		panic(err.Error())
	}
	srv = httptest.NewServer(cmd.NewRouter(cfg, zap.NewNop()))

	exitVal := m.Run()

	srv.Close()
	os.Exit(exitVal)
}

func createPairReqBody(from, to, strategy string) io.Reader {
	data, err := json.Marshal(model.PairRequestBody{From: from, To: to, Strategy: strategy})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postVec(t *testing.T, from, to, strategy string) model.PairResponse {
	resp, err := http.Post(srv.URL+"/vec", "application/json", createPairReqBody(from, to, strategy))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var res model.PairResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	return res
}

func TestSubstituteChordE2E(t *testing.T) {
	res := postVec(t, "C4 E4 G4", "F3 A3 C4", "inversion")

	assert := assert.New(t)
	assert.Equal([]string{"C4", "E4", "G4"}, res.From.Names)
	assert.Equal([]string{"C4", "F4", "A4"}, res.To.Names)
	assert.Equal(3, res.Diff.SV)
}

func TestDominantResolutionE2E(t *testing.T) {
	res := postVec(t, "B3 D4 F4", "G4 B4 D5", "inversion")

	assert := assert.New(t)
	assert.Equal([]int{59, 62, 67}, res.To.Notes)
	assert.Equal(2, res.Diff.SV)
}

func TestExpandedSeventhE2E(t *testing.T) {
	res := postVec(t, "C3 E3 G3", "C3 E3 G3 B3", "inversion")

	assert := assert.New(t)
	assert.Equal([]string{"C3", "C3", "E3", "G3"}, res.From.Names)
	assert.Equal([]string{"B2", "C3", "E3", "G3"}, res.To.Names)
	assert.Equal(1, res.Diff.SV)
}
