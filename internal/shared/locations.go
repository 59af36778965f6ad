package shared

// DefaultLocations is the built-in allow-list for new review submissions.
var DefaultLocations = []string{
	"Albuquerque, New Mexico",
	"Carlsbad, California",
	"Chula Vista, California",
	"Colorado Springs, Colorado",
	"Denver, Colorado",
	"El Cajon, California",
	"El Paso, Texas",
	"Escondido, California",
	"Fresno, California",
	"La Mesa, California",
	"Las Vegas, Nevada",
	"Los Angeles, California",
	"Oceanside, California",
	"Phoenix, Arizona",
	"Sacramento, California",
	"Salt Lake City, Utah",
	"San Diego, California",
	"Tucson, Arizona",
}
