package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteurl/models"
)

func postCreateQuote(router http.Handler, form url.Values, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/a/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "quoteurl-test")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCreateQuoteAndFetchBack(t *testing.T) {
	router := setupTestRouter(t)

	w := postCreateQuote(router, url.Values{
		"statuses": {"12,34 56"},
		"authors":  {"alice bob,carol"},
		"json":     {`{"layout":"plain"}`},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Dialogue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "12 34 56", created.Title)
	assert.Equal(t, []string{"12", "34", "56"}, created.StatusIDList)
	assert.Equal(t, []string{"alice", "bob", "carol"}, created.AuthorList)
	assert.Nil(t, created.QuotedBy)
	assert.Equal(t, "quoteurl-test", created.QuoterUserAgent)

	w2 := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/q/"+created.ID, nil)
	router.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)

	var fetched models.Dialogue
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.StatusIDList, fetched.StatusIDList)
}

func TestCreateQuoteEscapesMarkup(t *testing.T) {
	router := setupTestRouter(t)

	w := postCreateQuote(router, url.Values{
		"statuses": {"<script>1</script>"},
		"authors":  {`"mallory"`},
		"json":     {`<b>`},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Dialogue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "&lt;script&gt;1&lt;/script&gt;", created.Title)
	assert.Equal(t, []string{"&lt;script&gt;1&lt;/script&gt;"}, created.StatusIDList)
	assert.Equal(t, []string{"&#34;mallory&#34;"}, created.AuthorList)
	assert.Equal(t, "&lt;b&gt;", created.JSON)
}

func TestCreateQuoteMismatchedListLengths(t *testing.T) {
	router := setupTestRouter(t)

	w := postCreateQuote(router, url.Values{
		"statuses": {"1,2,3"},
		"authors":  {"alice"},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Dialogue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created.StatusIDList, 3)
	assert.Len(t, created.AuthorList, 1)
}

func TestCreateQuoteEmptyFormStillCreates(t *testing.T) {
	router := setupTestRouter(t)

	w := postCreateQuote(router, url.Values{}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Dialogue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Empty(t, created.StatusIDList)
	assert.Empty(t, created.AuthorList)
	assert.NotEmpty(t, created.ID)
}

func TestCreateQuoteRecordsSignedInIdentity(t *testing.T) {
	router := setupTestRouter(t)
	token, userID := createSignedInUser(t, "erin")

	w := postCreateQuote(router, url.Values{
		"statuses": {"88"},
		"authors":  {"erin"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Dialogue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.QuotedBy)
	assert.Equal(t, userID, *created.QuotedBy)
}

func TestGetQuoteUnknownID(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/q/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
