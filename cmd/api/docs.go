package main

// @title Heat Risk API
// @version 1.0
// @description Heat risk scores for major Indian cities, computed from live weather, air quality and a pre-trained model.

// @BasePath /
// @schemes http https
