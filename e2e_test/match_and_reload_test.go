//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/scalechords/cmd"
	"github.com/jsphweid/scalechords/formula"
	"github.com/jsphweid/scalechords/logger"
	"github.com/jsphweid/scalechords/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMatchReqBody(degree int) io.Reader {
	mr := model.MatchRequestBody{Key: "C", Scale: "major", Mode: 1, Degree: degree}
	data, err := json.Marshal(mr)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postMatch(t *testing.T, url string, degree int) model.MatchResponse {
	resp, err := http.Post(url+"/match", "application/json", createMatchReqBody(degree))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res model.MatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestSecondDegreeOfCMajorE2E(t *testing.T) {
	ts := httptest.NewServer(cmd.NewServer(logger.Nop(), nil).Handler())
	defer ts.Close()

	res := postMatch(t, ts.URL, 2)
	assert.Equal(t, "D", res.Root)
	assert.Equal(t, []model.Chord{
		{Name: "Dm", Formula: []int{2, 5, 9}},
		{Name: "Dsus2", Formula: []int{2, 4, 9}},
		{Name: "Dsus4", Formula: []int{2, 7, 9}},
		{Name: "D5", Formula: []int{2, 9}},
	}, res.Chords)
}

func TestFormulaFileReloadE2E(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("m: [1, b3, 5]\n"), 0644))

	formulas, err := formula.Load(path)
	require.NoError(t, err)
	s := cmd.NewServer(logger.Nop(), formulas)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go formula.Watch(ctx, logger.Nop(), path, s.SetFormulas)

	assert.Equal(t, []model.Chord{{Name: "Dm", Formula: []int{2, 5, 9}}}, postMatch(t, ts.URL, 2).Chords)

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		require.NoError(t, os.WriteFile(path, []byte("m7: [1, b3, 5, b7]\n"), 0644))
		time.Sleep(500 * time.Millisecond)
		chords := postMatch(t, ts.URL, 2).Chords
		if len(chords) == 1 && chords[0].Name == "Dm7" {
			assert.Equal(t, []int{2, 5, 9, 12}, chords[0].Formula)
			return
		}
	}
	t.Fatal("formula file change never reached the server")
}
