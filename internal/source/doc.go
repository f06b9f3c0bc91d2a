/*
Package source fetches user records from the Record Source.

The Record Source is an HTTP endpoint answering GET with a JSON body of the
shape {"results": [...]}. HTTPSource issues exactly one request per Fetch;
there is no retry and no backoff. The records are returned in the order the
endpoint sent them, and the payload shape is not validated beyond what JSON
decoding requires.

# Errors

Fetch returns wrapped errors for:
  - transport failures (DNS, connection refused, timeout when one is set)
  - non-2xx responses (wrapping ErrUnexpectedStatus)
  - bodies that are not JSON

# Example Usage

	src := source.NewHTTPSource("https://randomuser.me/api/?results=100", 0)
	res, err := src.Fetch(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("fetch failed")
		return
	}
	fmt.Println(len(res.Users), source.FormatDuration(res.Duration))
*/
package source
