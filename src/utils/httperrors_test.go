package utils_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"itradebook/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorConstructors(t *testing.T) {
	err := utils.BadRequest("bad input")
	var httpErr *utils.HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "bad input", httpErr.Error())

	err = utils.UnprocessableEntity("cannot parse")
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
}

func TestWriteError(t *testing.T) {
	t.Run("writes HTTPError code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		utils.WriteError(rec, utils.NotFound("no such report"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "no such report"}`, rec.Body.String())
	})

	t.Run("defaults to 500 for plain errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		utils.WriteError(rec, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
