package console

// Greeting picks the closing line for the given local hour (0-23)
func Greeting(hour int) string {
	switch {
	case hour >= 3 && hour < 12:
		return "have a great day!"
	case hour >= 12 && hour < 17:
		return "enjoy the rest of your day!"
	case hour >= 17 && hour < 22:
		return "have a great night!"
	default:
		return "stop looking up legislators in Hawaii, it's late! GET SOME SLEEP!"
	}
}
