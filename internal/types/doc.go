/*
Package types defines the data structures shared by the userlist packages.

# Records

User is one record of the Record Source payload. Only the fields the table and
the pipeline read are decoded into struct fields:
  - name.first, name.last (and name.title for display)
  - location.country (and location.city for display)
  - email, used as the row identifier
  - phone, nat

Every other field of the payload is kept verbatim: a User decoded from JSON
re-encodes to exactly the bytes it was decoded from, so JSON and YAML output
pass unknown fields through unchanged.

# Sort modes

SortMode selects the field the derived list is ordered by. SortNone keeps the
working list order. The string forms ("none", "country", "name", "last") are
used by command-line flags and keybinds.json.
*/
package types
