package controllers

import (
	"net/http"

	"backend/data"

	"github.com/gin-gonic/gin"
)

// Static form vocabulary for the app: categories, origins, labels and the
// autocomplete sources.

// GET /meta/catalog
func MetaCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": data.Categories,
		"origins":    data.Origins,
		"labels":     data.Labels,
		"groceries":  data.Groceries,
	})
}

// GET /meta/countries
func MetaCountries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"priority": data.PriorityCountries,
		"eu":       data.EUCountries,
	})
}

// GET /meta/municipalities
func MetaMunicipalities(c *gin.Context) {
	c.JSON(http.StatusOK, data.Municipalities)
}
