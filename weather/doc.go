// Package weather enriches answers with current conditions at the farmer's
// location, resolved through the OpenWeather geocoding and weather APIs.
// Weather is advisory context only, so lookups degrade to an absent snapshot
// instead of failing the query.
package weather
