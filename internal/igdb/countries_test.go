package igdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryMarketMapped(t *testing.T) {
	testCases := []struct {
		code    int
		country string
		market  string
	}{
		{840, "Estados Unidos", "EUA"},
		{392, "Japão", "Asia"},
		{76, "Brasil", "América do Sul"},
		{250, "França", "Europa"},
		{124, "Canadá", "America do Norte"},
	}

	for _, tc := range testCases {
		country, market := CountryMarket(&tc.code)
		if assert.NotNil(t, country, "code %d", tc.code) {
			assert.Equal(t, tc.country, *country)
		}
		assert.Equal(t, tc.market, market)
	}
}

func TestCountryMarketUnmapped(t *testing.T) {
	code := 999
	country, market := CountryMarket(&code)

	if assert.NotNil(t, country) {
		assert.Equal(t, "Desconhecido", *country)
	}
	assert.Equal(t, "Global", market)
}

func TestCountryMarketAbsent(t *testing.T) {
	country, market := CountryMarket(nil)

	assert.Nil(t, country)
	assert.Equal(t, "Global", market)
}

func TestCountryMarketZero(t *testing.T) {
	code := 0
	country, market := CountryMarket(&code)

	assert.Nil(t, country)
	assert.Equal(t, "Global", market)
}
