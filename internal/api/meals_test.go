package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailydiet/daily-diet-api/internal/models"
)

const mealBody = `{"name":"Lunch","description":"rice and beans","date":"2024-10-15","hour":"11:11","isOnDiet":true}`

func TestCreateMealRequiresSession(t *testing.T) {
	router, db := setupTestRouter(t)

	w := doJSON(router, "POST", "/meals", mealBody, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session id is missing")

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "unauthorized request must not insert a row")
}

func TestCreateAndListMeal(t *testing.T) {
	router, _ := setupTestRouter(t)
	session := registerUser(t, router, "Jane", "jane@example.com")

	// Empty list is a 204 with no body, not an empty array.
	w := doJSON(router, "GET", "/meals", "", session)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(router, "POST", "/meals", mealBody, session)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "GET", "/meals", "", session)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Meals []models.Meal `json:"meals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Meals, 1)
	assert.Equal(t, "Lunch", response.Meals[0].Name)
	assert.Equal(t, "2024-10-15", response.Meals[0].Date)
	assert.Equal(t, "11:11", response.Meals[0].Hour)
	assert.True(t, response.Meals[0].IsOnDiet)
}

func TestGetMealRoundTrip(t *testing.T) {
	router, _ := setupTestRouter(t)
	session := registerUser(t, router, "Jane", "jane@example.com")

	w := doJSON(router, "POST", "/meals", mealBody, session)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "GET", "/meals", "", session)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Meals []models.Meal `json:"meals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Meals, 1)

	w = doJSON(router, "GET", "/meals/"+list.Meals[0].ID.String(), "", session)
	require.Equal(t, http.StatusOK, w.Code)
	var single struct {
		Meal models.Meal `json:"meal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &single))

	assert.Equal(t, list.Meals[0].ID, single.Meal.ID)
	assert.Equal(t, "Lunch", single.Meal.Name)
	assert.Equal(t, "rice and beans", single.Meal.Description)
	assert.Equal(t, "2024-10-15", single.Meal.Date)
	assert.Equal(t, "11:11", single.Meal.Hour)
	assert.True(t, single.Meal.IsOnDiet)
}

func TestGetMealAbsentIsNoContent(t *testing.T) {
	router, _ := setupTestRouter(t)
	session := registerUser(t, router, "Jane", "jane@example.com")

	w := doJSON(router, "GET", "/meals/8f2bd3e1-55ab-4f66-9f25-1b0d0e6f8f11", "", session)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "GET", "/meals/not-a-uuid", "", session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMealCrossUserIsInvisible(t *testing.T) {
	router, db := setupTestRouter(t)
	owner := registerUser(t, router, "Owner", "owner@example.com")
	intruder := registerUser(t, router, "Intruder", "intruder@example.com")

	w := doJSON(router, "POST", "/meals", mealBody, owner)
	require.Equal(t, http.StatusCreated, w.Code)

	var meal models.Meal
	require.NoError(t, db.First(&meal).Error)

	update := `{"name":"Hijacked","description":"x","date":"2024-10-16","hour":"09:00","isOnDiet":false}`
	w = doJSON(router, "PUT", "/meals/"+meal.ID.String(), update, intruder)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var unchanged models.Meal
	require.NoError(t, db.First(&unchanged, "id = ?", meal.ID).Error)
	assert.Equal(t, "Lunch", unchanged.Name)
	assert.True(t, unchanged.IsOnDiet)
}

func TestUpdateMealOverwritesFields(t *testing.T) {
	router, db := setupTestRouter(t)
	session := registerUser(t, router, "Jane", "jane@example.com")

	w := doJSON(router, "POST", "/meals", mealBody, session)
	require.Equal(t, http.StatusCreated, w.Code)

	var meal models.Meal
	require.NoError(t, db.First(&meal).Error)

	update := `{"name":"Dinner","description":"soup","date":"2024-10-16","hour":"20:30","isOnDiet":false}`
	w = doJSON(router, "PUT", "/meals/"+meal.ID.String(), update, session)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Meal
	require.NoError(t, db.First(&updated, "id = ?", meal.ID).Error)
	assert.Equal(t, "Dinner", updated.Name)
	assert.Equal(t, "soup", updated.Description)
	assert.Equal(t, "2024-10-16", updated.Date)
	assert.Equal(t, "20:30", updated.Hour)
	assert.False(t, updated.IsOnDiet)
	assert.True(t, updated.UpdatedAt.After(meal.UpdatedAt) || updated.UpdatedAt.Equal(meal.UpdatedAt))
}

func TestDeleteMeal(t *testing.T) {
	router, db := setupTestRouter(t)
	session := registerUser(t, router, "Jane", "jane@example.com")

	w := doJSON(router, "DELETE", "/meals/8f2bd3e1-55ab-4f66-9f25-1b0d0e6f8f11", "", session)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "POST", "/meals", mealBody, session)
	require.Equal(t, http.StatusCreated, w.Code)

	var meal models.Meal
	require.NoError(t, db.First(&meal).Error)

	w = doJSON(router, "DELETE", "/meals/"+meal.ID.String(), "", session)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMetrics(t *testing.T) {
	router, _ := setupTestRouter(t)
	session := registerUser(t, router, "Jane", "jane@example.com")

	w := doJSON(router, "GET", "/meals/metrics", "", session)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Chronological is_on_diet sequence: false, true, true.
	meals := []struct {
		hour   string
		onDiet bool
	}{
		{"08:00", false},
		{"12:00", true},
		{"19:00", true},
	}
	for i, m := range meals {
		body := fmt.Sprintf(
			`{"name":"Meal %d","description":"seq","date":"2024-10-15","hour":%q,"isOnDiet":%t}`,
			i, m.hour, m.onDiet,
		)
		w = doJSON(router, "POST", "/meals", body, session)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = doJSON(router, "GET", "/meals/metrics", "", session)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Metrics struct {
			TotalMeals       int `json:"totalMeals"`
			TotalOnDiet      int `json:"totalOnDiet"`
			TotalOutsideDiet int `json:"totalOutsideDiet"`
			BetterDietStreak int `json:"betterDietStreak"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Metrics.TotalMeals)
	assert.Equal(t, 2, response.Metrics.TotalOnDiet)
	assert.Equal(t, 1, response.Metrics.TotalOutsideDiet)
	assert.Equal(t, 2, response.Metrics.BetterDietStreak)
}

func TestCreateMealValidation(t *testing.T) {
	router, _ := setupTestRouter(t)
	session := registerUser(t, router, "Jane", "jane@example.com")

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"description":"x","date":"2024-10-15","hour":"11:11","isOnDiet":true}`},
		{"missing isOnDiet", `{"name":"Lunch","description":"x","date":"2024-10-15","hour":"11:11"}`},
		{"bad date format", `{"name":"Lunch","description":"x","date":"15-10-2024","hour":"11:11","isOnDiet":true}`},
		{"bad hour", `{"name":"Lunch","description":"x","date":"2024-10-15","hour":"25:00","isOnDiet":true}`},
		{"bad minute", `{"name":"Lunch","description":"x","date":"2024-10-15","hour":"11:65","isOnDiet":true}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/meals", tc.body, session)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// Single-digit hours are accepted.
	w := doJSON(router, "POST", "/meals", `{"name":"Breakfast","description":"x","date":"2024-10-15","hour":"9:30","isOnDiet":true}`, session)
	assert.Equal(t, http.StatusCreated, w.Code)
}
