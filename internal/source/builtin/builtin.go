package builtin

import "movierec/internal/domain"

// Loader yields the demo catalog compiled into the binary.
type Loader struct{}

// NewLoader returns the builtin catalog loader.
func NewLoader() *Loader { return &Loader{} }

// Name returns the identifier of this loader.
func (l *Loader) Name() string { return "builtin" }

// Load returns a fresh copy of the demo catalog.
func (l *Loader) Load() ([]domain.Movie, error) {
	out := make([]domain.Movie, len(movies))
	copy(out, movies)
	return out, nil
}

var movies = []domain.Movie{
	{
		Title:       "The Shawshank Redemption",
		Genre:       "Drama",
		Year:        1994,
		Rating:      9.3,
		Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BNDE3ODQxNDk5NF5BMl5BanBnXkFtZTcwNjk3NzM3OA@@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "The Godfather",
		Genre:       "Crime Drama",
		Year:        1972,
		Rating:      9.2,
		Description: "An organized crime dynasty's aging patriarch transfers control of his clandestine empire to his reluctant son.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BM2MyNjYxNmUtYTAwNi00MTYxLWJmNWYtYzZlODY3ZDFhODAxXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "The Dark Knight",
		Genre:       "Action Superhero",
		Year:        2008,
		Rating:      9.0,
		Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Pulp Fiction",
		Genre:       "Crime Drama",
		Year:        1994,
		Rating:      8.9,
		Description: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BNGNhMDIzZTUtNWEzNy00M2FmLTg5NGQtNmY1NWVmMmU4MjhiXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Forrest Gump",
		Genre:       "Drama Romance",
		Year:        1994,
		Rating:      8.8,
		Description: "The presidencies of Kennedy and Johnson, the Vietnam War, the Watergate scandal and other historical events unfold from the perspective of an Alabama man with an amazing life.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BNWIwODRlZTUtY2U3ZS00Yzg1LWJhNzYtMmZiYmEyNmY1ZmI3XkEyXkFqcGdeQXVyMTQxNzMzNDI@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Inception",
		Genre:       "Sci-Fi Action",
		Year:        2010,
		Rating:      8.8,
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "The Matrix",
		Genre:       "Sci-Fi Action",
		Year:        1999,
		Rating:      8.7,
		Description: "A computer programmer discovers that reality as he knows it is a simulation created by machines, and joins a rebellion to break free.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BNzQzOTk3OTAtNDQ0Zi00ZTVkLWI0MTEtMDllZjNkMzNiNDRhXkEyXkFqcGdeQXVyNjU0OTQ0OTY@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Goodfellas",
		Genre:       "Crime Drama",
		Year:        1990,
		Rating:      8.7,
		Description: "The story of Henry Hill and his life in the mob, covering his relationship with his wife Karen Hill and his mob partners Jimmy Conway and Tommy DeVito.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BY2NkZjEzMDgtN2RjYy00YzM1LWI4ZmQtMjIwYjFjNmI3ZDEzXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "The Silence of the Lambs",
		Genre:       "Psychological Thriller",
		Year:        1991,
		Rating:      8.6,
		Description: "A young F.B.I. cadet must receive the help of an incarcerated and manipulative cannibal killer to help catch another serial killer.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BNjNhZTk0ZmEtNzhlZS00ZmRmLWJhZjAtMzQ4NzA1NmVmZmJhXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Star Wars: Episode IV - A New Hope",
		Genre:       "Sci-Fi Adventure",
		Year:        1977,
		Rating:      8.6,
		Description: "Luke Skywalker joins forces with a Jedi Knight, a cocky pilot, a Wookiee and two droids to save the galaxy from the Empire's world-destroying battle station.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BNzVlY2MwMjktM2E4OS00Y2Y3LWE3ZjctOWY2MWJlOTRhOGNiXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Fight Club",
		Genre:       "Drama",
		Year:        1999,
		Rating:      8.8,
		Description: "An insomniac office worker and a devil-may-care soapmaker form an underground fight club that evolves into something much, much more.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BMmEzNTM5OTItMTdmNy00YmY2LThjOGYtNzViMmUwYmUwMmY4XkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Interstellar",
		Genre:       "Sci-Fi Adventure",
		Year:        2014,
		Rating:      8.7,
		Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BZjdkOTU3MDAtM2UwMi00YzIxLWFmNDktMWY2NmFmNzVmNmRkXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "The Lord of the Rings: The Fellowship of the Ring",
		Genre:       "Fantasy Adventure",
		Year:        2001,
		Rating:      8.8,
		Description: "A meek Hobbit from the Shire and eight companions set out on a journey to destroy the powerful One Ring and save Middle-earth from the Dark Lord Sauron.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BN2EyZjM3NzUtNWUzMi00MTgxLWI0NTctMzY4M2VlOTdjZWRiXkEyXkFqcGdeQXVyNDUzOTQ5MjY@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Gladiator",
		Genre:       "Historical Action",
		Year:        2000,
		Rating:      8.5,
		Description: "A former Roman General sets out to exact vengeance against the corrupt emperor who murdered his family and sent him into slavery.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BMDliMmNhNDEtODUyOS00MjNlLWI3ZTQtM2Q3ZmNhMGNmOGVmXkEyXkFqcGdeQXVyNTY3MTYzMDU@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "The Departed",
		Genre:       "Crime Thriller",
		Year:        2006,
		Rating:      8.5,
		Description: "An undercover cop and a mole in the police attempt to identify each other while infiltrating an Irish gang in South Boston.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BMTI1MTY2OTIxNV5BMl5BanBnXkFtZTYwNzQ4Mzc2._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "The Green Mile",
		Genre:       "Drama",
		Year:        1999,
		Rating:      8.6,
		Description: "The lives of guards on Death Row are affected by one of their charges: a black man accused of child murder and rape, yet who has a mysterious gift.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BMTUwNjU5NTkyMF5BMl5BanBnXkFtZTcwNTc3MDQ2Ng@@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Saving Private Ryan",
		Genre:       "War Drama",
		Year:        1998,
		Rating:      8.6,
		Description: "Following the Normandy Landings, a group of U.S. soldiers go behind enemy lines to retrieve a paratrooper whose brothers have been killed in action.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BZjhkMWQ4MzMtZmRmZC00M2UxLTgxOTQtNmNiNDk0Y2NhYzNkXkEyXkFqcGdeQXVyNDYyMDk5MTU@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Spirited Away",
		Genre:       "Animated Fantasy",
		Year:        2001,
		Rating:      8.6,
		Description: "During her family's move to the suburbs, a sullen 10-year-old girl wanders into a world ruled by gods, witches, and spirits, and where humans are changed into beasts.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BMjlmZmI5MDctNDE2YS00YWE0LWE5ZWItZDBhYWQ0NTcxYWFmXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "The Avengers",
		Genre:       "Superhero Action",
		Year:        2012,
		Rating:      8.0,
		Description: "Earth's mightiest heroes must come together and learn to fight as a team to stop the mischievous Loki and his alien army from enslaving humanity.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BNDYxNjQyMjAtNTdiOS00NGYwLWFmNTAtNDQ0ZmQxYWNmNjkyXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_FMjpg_UX1000_.jpg",
	},
	{
		Title:       "Avatar",
		Genre:       "Sci-Fi Adventure",
		Year:        2009,
		Rating:      7.8,
		Description: "A paraplegic marine dispatched to the moon Pandora on a unique mission becomes torn between following his mission and protecting the world he feels is his home.",
		Poster:      "https://m.media-amazon.com/images/M/MV5BMTYwOTEwNjAzMl5BMl5BanBnXkFtZTcwODc5MTUwMw@@._V1_FMjpg_UX1000_.jpg",
	},
}
